// Package logger is the public face of logport: loggers, the factory that
// issues them, and the configurator contract for external backends.
//
// Library and application code asks a Factory for loggers by category or
// by type and stays unaware of the backend behind them:
//
//	log := logger.GetLogger("ingest.parser")
//	log.Warn("malformed record skipped", logger.Int("line", n))
//
// The backend is chosen on the first request, exactly once per factory. A
// registered Configurator takes it over entirely; otherwise the LOGPORT_*
// environment variables pick between the zap-based native handler and the
// plain console fallback. Requesting a logger can never fail: whatever is
// misconfigured, a usable logger comes back.
package logger
