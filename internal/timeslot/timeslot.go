package timeslot

import (
	"sort"
	"strings"
	"time"
)

// Datas e horas persistem como strings ("2006-01-02" / "HH:MM") e são
// comparadas como strings; toda aritmética passa por time.Time aqui dentro.

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ParseDate interpreta uma data de calendário pura (sem hora, sem fuso).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Weekday deriva o dia da semana da própria data — nunca do valor
// redundante que o cliente envia junto.
func Weekday(date string) (time.Weekday, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

// IsValidDate aceita apenas o formato ISO zero-padded.
func IsValidDate(s string) bool {
	t, err := ParseDate(s)
	return err == nil && FormatDate(t) == strings.TrimSpace(s)
}

// IsValidTime aceita apenas "HH:MM" 24h zero-padded — qualquer outra coisa
// quebraria unicidade e ordenação das strings gravadas.
func IsValidTime(s string) bool {
	s = strings.TrimSpace(s)
	t, err := time.Parse(TimeLayout, s)
	return err == nil && t.Format(TimeLayout) == s
}

// Normalize padroniza um horário para comparação: trim + minúsculas
// (dados legados podem ter espaço e caixa inconsistentes).
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SplitList converte a forma gravada ("09:00,09:30") em slice normalizada,
// ordenada e sem duplicatas.
func SplitList(joined string) []string {
	parts := strings.Split(joined, ",")
	seen := make(map[string]bool, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		n := Normalize(p)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// JoinList é o inverso de SplitList, para persistência.
func JoinList(slots []string) string {
	norm := make([]string, 0, len(slots))
	seen := make(map[string]bool, len(slots))
	for _, s := range slots {
		n := Normalize(s)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		norm = append(norm, n)
	}
	sort.Strings(norm)
	return strings.Join(norm, ",")
}

// PrevDay devolve o dia anterior em formato ISO.
func PrevDay(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, -1)), nil
}

// WeekWindow devolve [início, fim] (inclusivo, 7 dias) da semana que contém
// a data, com o primeiro dia da semana configurável.
func WeekWindow(date string, weekStart time.Weekday) (string, string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", "", err
	}
	offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
	start := t.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	return FormatDate(start), FormatDate(end), nil
}
