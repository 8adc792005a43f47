package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var monthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var monthAbbrs = [12]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

func monthParts(t time.Time) (number int, name, abbr string, year int) {
	number = int(t.Month())
	return number, monthNames[number-1], monthAbbrs[number-1], t.Year()
}

func formatISO(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// humanize turns raw status strings into display form: underscores become
// spaces and every word is title-cased. Empty input yields the fallback.
func humanize(raw, fallback string) string {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	words := strings.Fields(strings.ReplaceAll(raw, "_", " "))
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// formatCode renders order codes such as "ORD-007". Non-numeric ids pass
// through verbatim; missing ids render a dash placeholder.
func formatCode(prefix, id string) string {
	if id == "" {
		return prefix + "-—"
	}
	if n, err := strconv.Atoi(id); err == nil {
		return fmt.Sprintf("%s-%03d", prefix, n)
	}
	return prefix + "-" + id
}
