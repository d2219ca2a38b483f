package handlers

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	"photo-dashboard/pkg/logger"
	"photo-dashboard/pkg/utils"
)

// LogHandler serves the category log files to operators. Access is checked by the
// AdminToken middleware.
type LogHandler struct {
	logDir string
}

func NewLogHandler(logDir string) *LogHandler {
	return &LogHandler{logDir: logDir}
}

// GetLogs returns log entries
// @Summary Get application logs
// @Tags Admin
// @Security AdminToken
// @Param lines query int false "Number of lines" default(100)
// @Param level query string false "Filter by level (DEBUG, INFO, WARN, ERROR)"
// @Param category query string false "Filter by category (api, search, people, identity, dataset, session, websocket, scheduler, startup)"
// @Param search query string false "Search in message/action"
// @Param date query string false "Day to read, YYYY-MM-DD; defaults to today"
// @Router /api/v1/admin/logs [get]
func (h *LogHandler) GetLogs(c *fiber.Ctx) error {
	opts := logger.ReadLogsOptions{
		Lines:    c.QueryInt("lines", 100),
		Level:    logger.Level(c.Query("level")),
		Category: logger.Category(c.Query("category")),
		Search:   c.Query("search"),
	}
	if raw := c.Query("date"); raw != "" {
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid date", err)
		}
		opts.Date = day
	}

	entries, err := logger.ReadLogs(opts)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to read logs", err)
	}

	return utils.SuccessResponse(c, "Logs retrieved", fiber.Map{
		"entries": entries,
		"count":   len(entries),
		"filters": fiber.Map{
			"lines":    opts.Lines,
			"level":    opts.Level,
			"category": opts.Category,
			"search":   opts.Search,
			"date":     c.Query("date"),
		},
	})
}

// @Router /api/v1/admin/logs/files [get]
func (h *LogHandler) GetLogFiles(c *fiber.Ctx) error {
	files, err := logger.ListLogFiles()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list log files", err)
	}

	return utils.SuccessResponse(c, "Log files retrieved", fiber.Map{
		"files":  files,
		"logDir": h.logDir,
	})
}

// GetLogStats counts today's entries by level and category
// @Router /api/v1/admin/logs/stats [get]
func (h *LogHandler) GetLogStats(c *fiber.Ctx) error {
	entries, _ := logger.ReadLogs(logger.ReadLogsOptions{Lines: 1000})

	levelCounts := map[string]int{
		string(logger.LevelDebug): 0,
		string(logger.LevelInfo):  0,
		string(logger.LevelWarn):  0,
		string(logger.LevelError): 0,
	}
	categoryCounts := map[string]int{}
	for _, entry := range entries {
		levelCounts[string(entry.Level)]++
		categoryCounts[string(entry.Category)]++
	}

	var totalSize int64
	files, _ := logger.ListLogFiles()
	for _, f := range files {
		if info, err := os.Stat(filepath.Join(h.logDir, f)); err == nil {
			totalSize += info.Size()
		}
	}

	return utils.SuccessResponse(c, "Log stats retrieved", fiber.Map{
		"total_entries":    len(entries),
		"by_level":         levelCounts,
		"by_category":      categoryCounts,
		"total_files":      len(files),
		"total_size_bytes": totalSize,
	})
}
