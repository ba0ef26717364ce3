package internal

import "github.com/sirupsen/logrus"

// tracer is the package-level structured logger for pipeline diagnostics.
// It is silent by default (spec.md's pipeline has no observable logging
// side effects); the CLI's -trace flag raises its level.
var tracer = func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}()

// SetTraceLevel adjusts the package-level tracer. Accepted names mirror
// logrus's own: "debug", "info", "warn", "error".
func SetTraceLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	tracer.SetLevel(level)
	return nil
}

func traceStage(stage string, fields logrus.Fields) {
	tracer.WithFields(fields).Debugf("stage %s", stage)
}

// TraceStage is the exported entry point cmd/lox uses to mark pipeline
// stage boundaries (scan/parse/resolve/interpret) under the -trace flag.
func TraceStage(stage, source string) {
	traceStage(stage, logrus.Fields{"source": source})
}
