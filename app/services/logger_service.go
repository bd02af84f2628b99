package services

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"
)

// LoggerService handles application logging
type LoggerService struct {
	logDir     string
	logFile    *os.File
	logger     *log.Logger
	currentDay string
}

// NewLoggerService creates a new logger service
func NewLoggerService(dataDir string) *LoggerService {
	service := &LoggerService{}
	service.initializeLogger(dataDir)
	return service
}

// initializeLogger sets up the logging system
func (s *LoggerService) initializeLogger(dataDir string) error {
	if dataDir != "" {
		s.logDir = filepath.Join(dataDir, "logs")
	} else {
		s.logDir = "logs"
	}

	if err := os.MkdirAll(s.logDir, 0755); err != nil {
		log.Printf("Warning: Could not create logs directory: %v", err)
		s.logDir = "logs"
		os.MkdirAll(s.logDir, 0755)
	}

	// Create or open log file for today
	if err := s.rotateLogFile(); err != nil {
		log.Printf("Warning: Could not create log file: %v. Logging to stdout only.", err)
		s.logger = log.New(os.Stdout, "", log.LstdFlags|log.Lshortfile)
		log.SetOutput(os.Stdout)
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		return nil
	}

	// Write to both file and stdout
	multiWriter := io.MultiWriter(os.Stdout, s.logFile)
	s.logger = log.New(multiWriter, "", log.LstdFlags|log.Lshortfile)

	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	s.LogInfo("Logger initialized", fmt.Sprintf("Log directory: %s", s.logDir))

	return nil
}

// rotateLogFile creates a new log file for the current day
func (s *LoggerService) rotateLogFile() error {
	now := time.Now()
	today := now.Format("2006-01-02")

	if s.currentDay == today && s.logFile != nil {
		return nil // Already on correct file
	}

	if s.logFile != nil {
		s.logFile.Close()
	}

	logFileName := fmt.Sprintf("%s.log", today)
	logFilePath := filepath.Join(s.logDir, logFileName)

	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	s.logFile = file
	s.currentDay = today

	return nil
}

func (s *LoggerService) checkAndRotate() {
	if err := s.rotateLogFile(); err != nil {
		log.Printf("Warning: log rotation failed: %v", err)
	}
}

// LogInfo logs an informational message
func (s *LoggerService) LogInfo(message string, details ...string) {
	s.checkAndRotate()
	detailStr := ""
	if len(details) > 0 {
		detailStr = " | " + details[0]
	}
	s.logger.Printf("[INFO] %s%s", message, detailStr)
}

// LogWarning logs a warning message
func (s *LoggerService) LogWarning(message string, details ...string) {
	s.checkAndRotate()
	detailStr := ""
	if len(details) > 0 {
		detailStr = " | " + details[0]
	}
	s.logger.Printf("[WARNING] %s%s", message, detailStr)
}

// LogError logs an error with its message
func (s *LoggerService) LogError(message string, err error) {
	s.checkAndRotate()
	if err != nil {
		s.logger.Printf("[ERROR] %s | %v", message, err)
	} else {
		s.logger.Printf("[ERROR] %s", message)
	}
}

// LogPanic logs a recovered panic value with its stack
func (s *LoggerService) LogPanic(r interface{}) {
	s.logger.Printf("[PANIC] %v\n%s", r, debug.Stack())
}

// RecoverPanic recovers from a panic in a goroutine and logs the stack
func (s *LoggerService) RecoverPanic() {
	if r := recover(); r != nil {
		s.logger.Printf("[PANIC] %v\n%s", r, debug.Stack())
	}
}

// Close closes the log file
func (s *LoggerService) Close() {
	if s.logFile != nil {
		s.logFile.Close()
	}
}
