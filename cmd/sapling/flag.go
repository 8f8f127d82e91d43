package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"
)

type logLevelFlag struct {
	value slog.Level
}

func (l *logLevelFlag) String() string {
	return l.value.String()
}

func (l *logLevelFlag) Set(value string) error {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(value)]
	if !ok {
		return fmt.Errorf("unknown log level")
	}
	l.value = v
	return nil
}

// defined flags
var (
	levelFlag    logLevelFlag
	logFileFlag  = flag.String("logfile", "", "Write logs to this file instead of the console")
	settingsFlag = flag.String("settings", "", "Settings file; created with defaults when missing and reloaded on change")
	groupsFlag   = flag.String("groups", "", "Groups file loaded at start and saved on exit")
	scriptFlag   = flag.String("script", "", "Replay this input script instead of live input")
	countFlag    = flag.Int("count", 24, "Number of sprites to spawn")
	shotsFlag    = flag.String("screenshots", "screenshots", "Directory for screenshots requested by the input script")
)

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "set log level")
}
