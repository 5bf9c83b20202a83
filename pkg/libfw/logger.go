package libfw

import (
	"fmt"
	"log"
	"runtime/debug"
	"sync"
)

const (
	PRINT = 01
	DEBUG = 10
	CMD   = 15
	INFO  = 20
	WARN  = 30
	ERROR = 40
	FATAL = 99
)

var levels = map[int]string{
	PRINT: "PRINT",
	DEBUG: "DEBUG",
	CMD:   "CMD",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

type logger struct {
	Level    int
	FileName string
	FileLog  *log.Logger
	Lock     sync.Mutex
}

func (l *logger) Write(level int, format string, v ...interface{}) {
	str, ok := levels[level]
	if !ok {
		str = "NULL"
	}
	if level < l.Level {
		return
	}
	log.Printf(fmt.Sprintf("%s|%s", str, format), v...)
	if l.FileLog != nil {
		l.Lock.Lock()
		l.FileLog.Printf("%s|%s", str, fmt.Sprintf(format, v...))
		l.Lock.Unlock()
	}
}

var Logger = &logger{
	Level: INFO,
}

func SetLogger(file string, level int) {
	Logger.Level = level
	if file == "" || Logger.FileName == file {
		return
	}
	Logger.FileName = file
	fp, err := OpenWrite(file)
	if err == nil {
		Logger.FileLog = log.New(fp, "", log.LstdFlags)
	} else {
		Warn("Logger.Init: %s", err)
	}
}

func SetLevel(level int) {
	Logger.Level = level
}

type SubLogger struct {
	*logger
	Prefix string
}

func NewSubLogger(prefix string) *SubLogger {
	return &SubLogger{
		logger: Logger,
		Prefix: prefix,
	}
}

var rLogger = NewSubLogger("root")

func HasLog(level int) bool {
	return rLogger.Has(level)
}

func Catch(name string) {
	if err := recover(); err != nil {
		Fatal("%s|PANIC >>> %s <<<", name, err)
		Fatal("%s|STACK >>> %s <<<", name, debug.Stack())
	}
}

func Print(format string, v ...interface{}) {
	rLogger.Print(format, v...)
}

func Debug(format string, v ...interface{}) {
	rLogger.Debug(format, v...)
}

func Cmd(format string, v ...interface{}) {
	rLogger.Cmd(format, v...)
}

func Info(format string, v ...interface{}) {
	rLogger.Info(format, v...)
}

func Warn(format string, v ...interface{}) {
	rLogger.Warn(format, v...)
}

func Error(format string, v ...interface{}) {
	rLogger.Error(format, v...)
}

func Fatal(format string, v ...interface{}) {
	rLogger.Fatal(format, v...)
}

func (s *SubLogger) Has(level int) bool {
	return level >= s.Level
}

func (s *SubLogger) Fmt(format string) string {
	return s.Prefix + "|" + format
}

func (s *SubLogger) Print(format string, v ...interface{}) {
	s.logger.Write(PRINT, s.Fmt(format), v...)
}

func (s *SubLogger) Debug(format string, v ...interface{}) {
	s.logger.Write(DEBUG, s.Fmt(format), v...)
}

func (s *SubLogger) Cmd(format string, v ...interface{}) {
	s.logger.Write(CMD, s.Fmt(format), v...)
}

func (s *SubLogger) Info(format string, v ...interface{}) {
	s.logger.Write(INFO, s.Fmt(format), v...)
}

func (s *SubLogger) Warn(format string, v ...interface{}) {
	s.logger.Write(WARN, s.Fmt(format), v...)
}

func (s *SubLogger) Error(format string, v ...interface{}) {
	s.logger.Write(ERROR, s.Fmt(format), v...)
}

func (s *SubLogger) Fatal(format string, v ...interface{}) {
	s.logger.Write(FATAL, s.Fmt(format), v...)
}

func init() {
	log.SetFlags(log.LstdFlags)
}
