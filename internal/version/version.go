package version

import (
	"errors"
	"fmt"
	"time"
)

// Заполняются при сборке через -ldflags "-X rogue-engine/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD, UTC
	BuildCommit string
	BuildBranch string
)

// Номер сборки - число дней от начала проекта
var projectEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

var ErrNoBuildDate = errors.New("build date is not set")

// BuildInfo - ответ /version
type BuildInfo struct {
	Build  int    `json:"build"`
	Date   string `json:"date,omitempty"`
	Commit string `json:"commit,omitempty"`
	Branch string `json:"branch,omitempty"`
	Error  string `json:"error,omitempty"`
}

// BuildNumber считает номер сборки по дате
func BuildNumber(date string) (int, error) {
	if date == "" {
		return 0, ErrNoBuildDate
	}
	t, err := time.ParseInLocation(time.DateOnly, date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("bad build date %q: %w", date, err)
	}
	if t.Before(projectEpoch) {
		return 0, fmt.Errorf("build date %s is before %s", date, projectEpoch.Format(time.DateOnly))
	}
	return int(t.Sub(projectEpoch) / (24 * time.Hour)), nil
}

func Info() BuildInfo {
	info := BuildInfo{Date: BuildDate, Commit: BuildCommit, Branch: BuildBranch}
	n, err := BuildNumber(BuildDate)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Build = n
	return info
}

// String - строка для лога при старте
func String() string {
	info := Info()
	if info.Error != "" {
		return fmt.Sprintf("rogue-engine dev build (%s)", info.Error)
	}
	return fmt.Sprintf("rogue-engine build %d (%s) commit=%s branch=%s",
		info.Build, info.Date, orUnknown(info.Commit), orUnknown(info.Branch))
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
