package yalogger

// Level mirrors the logrus level ordering so it converts with logrus.Level(level).
type Level uint32

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

type BaseLoggerType uint8

const (
	Logrus BaseLoggerType = iota
)

const (
	KeyReadID   = "read_id"
	KeyReadType = "read_type"
	KeyAttempt  = "attempt"
)

const DefaultTimestampFormat = "2006-01-02 15:04:05"
