// Package log provides the logging abstraction used by pipeflow libraries.
//
// Library code never writes to stdout or stderr on its own. It logs through
// the [Logger] interface, which defaults to [NoopLogger]. The CLI plugs in
// a zerolog-backed [ZerologAdapter]:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	calc, err := hydraulics.New(hydraulics.WithLogger(logger))
//
// Any other logging library can be used by implementing the four
// level methods of [Logger].
package log
