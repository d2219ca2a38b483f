package logger

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func write(level Level, category Category, action, message string, err error, data map[string]interface{}) {
	Default().Log(LogEntry{
		Level:    level,
		Category: category,
		Action:   action,
		Message:  message,
		Error:    errString(err),
		Data:     data,
	})
}

// API logs request handling events
func API(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategoryAPI, action, message, nil, data)
}

// Search logs search execution and pagination
func Search(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategorySearch, action, message, nil, data)
}

func SearchWarn(action, message string, data map[string]interface{}) {
	write(LevelWarn, CategorySearch, action, message, nil, data)
}

func SearchError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategorySearch, action, message, err, data)
}

// People logs people directory loads
func People(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategoryPeople, action, message, nil, data)
}

func PeopleError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategoryPeople, action, message, err, data)
}

// Identity logs rename, delete and merge
func Identity(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategoryIdentity, action, message, nil, data)
}

func IdentityError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategoryIdentity, action, message, err, data)
}

// Dataset logs ingestion jobs
func Dataset(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategoryDataset, action, message, nil, data)
}

func DatasetError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategoryDataset, action, message, err, data)
}

// Session logs session lifecycle
func Session(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategorySession, action, message, nil, data)
}

func SessionWarn(action, message string, data map[string]interface{}) {
	write(LevelWarn, CategorySession, action, message, nil, data)
}

func SessionError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategorySession, action, message, err, data)
}

// WebSocket logs notification socket events
func WebSocket(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategoryWebSocket, action, message, nil, data)
}

// Scheduler logs cron job events
func Scheduler(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategoryScheduler, action, message, nil, data)
}

func SchedulerWarn(action, message string, data map[string]interface{}) {
	write(LevelWarn, CategoryScheduler, action, message, nil, data)
}

func SchedulerError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategoryScheduler, action, message, err, data)
}

// Startup logs startup/initialization events
func Startup(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategoryStartup, action, message, nil, data)
}

func StartupError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategoryStartup, action, message, err, data)
}

func StartupWarn(action, message string, data map[string]interface{}) {
	write(LevelWarn, CategoryStartup, action, message, nil, data)
}

// Info logs info level message
func Info(category Category, action, message string, data map[string]interface{}) {
	write(LevelInfo, category, action, message, nil, data)
}

// Error logs error level message
func Error(category Category, action, message string, err error, data map[string]interface{}) {
	write(LevelError, category, action, message, err, data)
}

// Debug logs debug level message
func Debug(category Category, action, message string, data map[string]interface{}) {
	write(LevelDebug, category, action, message, nil, data)
}

// Warn logs warning level message
func Warn(category Category, action, message string, data map[string]interface{}) {
	write(LevelWarn, category, action, message, nil, data)
}

func WebSocketError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategoryWebSocket, action, message, err, data)
}
