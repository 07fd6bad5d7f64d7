package domain

import (
	"fmt"
	"sort"
	"time"
)

// TimeRange — полуинтервал [Start, End) в минутах от начала суток.
// Соприкасающиеся интервалы (End одного равен Start другого) не пересекаются.
type TimeRange struct {
	Start int
	End   int
}

// ParseClock разбирает время суток "HH:MM" в минуты от полуночи.
func ParseClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("неверный формат времени %q: %w", value, ErrInvalidRange)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock возвращает минуты от полуночи в виде "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func NewTimeRange(start, end string) (TimeRange, error) {
	s, err := ParseClock(start)
	if err != nil {
		return TimeRange{}, err
	}

	e, err := ParseClock(end)
	if err != nil {
		return TimeRange{}, err
	}

	if s >= e {
		return TimeRange{}, fmt.Errorf("время начала %s не раньше времени окончания %s: %w", start, end, ErrInvalidRange)
	}

	return TimeRange{Start: s, End: e}, nil
}

func (r TimeRange) Duration() int {
	return r.End - r.Start
}

func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start < other.End && other.Start < r.End
}

func (r TimeRange) Contains(inner TimeRange) bool {
	return r.Start <= inner.Start && inner.End <= r.End
}

// Subtract возвращает свободные подынтервалы r после вычитания занятых
// интервалов. Занятые интервалы могут пересекаться между собой, выходить
// за границы r или полностью покрывать его; результат отсортирован по
// возрастанию и не содержит пустых интервалов.
func (r TimeRange) Subtract(occupied []TimeRange) []TimeRange {
	relevant := make([]TimeRange, 0, len(occupied))
	for _, o := range occupied {
		if r.Overlaps(o) {
			relevant = append(relevant, o)
		}
	}

	if len(relevant) == 0 {
		return []TimeRange{r}
	}

	sort.Slice(relevant, func(i, j int) bool {
		return relevant[i].Start < relevant[j].Start
	})

	free := make([]TimeRange, 0, len(relevant)+1)
	cursor := r.Start

	for _, o := range relevant {
		if o.Start > cursor {
			free = append(free, TimeRange{Start: cursor, End: o.Start})
		}
		if o.End > cursor {
			cursor = o.End
		}
	}

	if cursor < r.End {
		free = append(free, TimeRange{Start: cursor, End: r.End})
	}

	return free
}
