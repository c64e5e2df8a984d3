package service

import (
	"strconv"
	"strings"

	"github.com/jose-valero/hoyolab-gist-stats/internal/domain"
)

// statLookup: name -> value. Último valor gana, pero la clave conserva la
// posición de su primera aparición.
type statLookup struct {
	keys []string
	vals map[string]string
}

func newStatLookup(stats []domain.Stat) statLookup {
	l := statLookup{vals: make(map[string]string, len(stats))}
	for _, st := range stats {
		if _, seen := l.vals[st.Name]; !seen {
			l.keys = append(l.keys, st.Name)
		}
		l.vals[st.Name] = st.Value
	}
	return l
}

// first devuelve el valor del primer alias presente, o N/A.
func (l statLookup) first(aliases []string) string {
	for _, a := range aliases {
		if v, ok := l.vals[a]; ok {
			return v
		}
	}
	return domain.NotAvailable
}

// Slot es una línea fija de la plantilla de un juego. Aliases cubre los
// nombres localizados con que HoYoLab puede mandar la misma stat.
type Slot struct {
	Icon    string
	Label   string
	Aliases []string
}

type formatFunc func(rec domain.GameRecord, stats statLookup) []string

// templates: game_id -> cómo se formatean sus stats. Juego nuevo = entrada nueva.
var templates = map[int]formatFunc{
	domain.GameGenshinImpact: slotTemplate([]Slot{
		{"🕹️", "Active Days", []string{"Active Days", "Days Active", "活跃天数"}},
		{"🤝", "Characters", []string{"Characters", "Characters Obtained", "获得角色数"}},
		{"🏆", "Achievements", []string{"Achievements", "Achievements Unlocked", "成就达成数"}},
		{"🌟", "Spiral Abyss", []string{"Spiral Abyss", "Spiral Abyss Progress", "深境螺旋"}},
	}),
}

func slotTemplate(slots []Slot) formatFunc {
	return func(_ domain.GameRecord, stats statLookup) []string {
		out := make([]string, 0, len(slots))
		for _, s := range slots {
			out = append(out, s.Icon+" "+s.Label+": "+stats.first(s.Aliases))
		}
		return out
	}
}

// genericTemplate vuelca todas las stats tal cual, en orden.
func genericTemplate(_ domain.GameRecord, stats statLookup) []string {
	out := make([]string, 0, len(stats.keys))
	for _, k := range stats.keys {
		out = append(out, k+": "+stats.vals[k])
	}
	return out
}

// FormatRecord arma el bloque de texto de un juego (sin salto final).
func FormatRecord(rec domain.GameRecord) string {
	f, ok := templates[rec.GameID]
	if !ok {
		f = genericTemplate
	}

	name := rec.Name
	if name == "" {
		name = domain.NotAvailable
	}
	level := domain.NotAvailable
	if rec.Level != nil {
		level = strconv.Itoa(*rec.Level)
	}

	lines := []string{"🎮 " + name, "⚔️ Lv." + level}
	lines = append(lines, f(rec, newStatLookup(rec.Stats))...)
	return strings.Join(lines, "\n")
}

// BuildDigest concatena un bloque por juego separados por una línea en blanco.
func BuildDigest(records []domain.GameRecord) string {
	if len(records) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(records))
	for _, r := range records {
		blocks = append(blocks, FormatRecord(r))
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
