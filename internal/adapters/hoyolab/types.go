package hoyolab

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// --- Game record card ---
// Sobre de la respuesta. data y list se guardan crudos para poder distinguir
// "no vino" de "vino vacío".
type envelopeDTO struct {
	Retcode flexInt         `json:"retcode"`
	Message flexString      `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type cardDataDTO struct {
	List json.RawMessage `json:"list"`
}

type recordDTO struct {
	GameID   flexInt    `json:"game_id"`
	GameName flexString `json:"game_name"`
	Level    flexInt    `json:"level"`
	Data     statsDTO   `json:"data"`
}

type statDTO struct {
	Name  flexString `json:"name"`
	Value flexString `json:"value"`
}

// statsDTO ignora cualquier cosa que no sea un array de {name, value}.
type statsDTO []statDTO

func (s *statsDTO) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if json.Unmarshal(b, &raw) != nil {
		return nil
	}
	out := make(statsDTO, 0, len(raw))
	for _, r := range raw {
		var st statDTO
		if json.Unmarshal(r, &st) != nil || !st.Name.ok {
			continue
		}
		out = append(out, st)
	}
	*s = out
	return nil
}

// flexString acepta string, número o bool. null u otra cosa = ausente.
type flexString struct {
	val string
	ok  bool
}

func (f *flexString) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		return nil
	}
	var s string
	if json.Unmarshal(b, &s) == nil {
		f.val, f.ok = s, true
		return nil
	}
	var n json.Number
	if json.Unmarshal(b, &n) == nil {
		f.val, f.ok = n.String(), true
		return nil
	}
	var t bool
	if json.Unmarshal(b, &t) == nil {
		f.val, f.ok = strconv.FormatBool(t), true
	}
	return nil
}

// flexInt acepta 55, "55" o 55.0. Cualquier otra cosa = ausente.
type flexInt struct {
	val int
	ok  bool
}

func (f *flexInt) UnmarshalJSON(b []byte) error {
	var s flexString
	_ = s.UnmarshalJSON(b)
	if !s.ok {
		return nil
	}
	v := strings.TrimSpace(s.val)
	if n, err := strconv.Atoi(v); err == nil {
		f.val, f.ok = n, true
		return nil
	}
	// floats enteros (2.0, 5.5e1) también valen
	fl, err := strconv.ParseFloat(v, 64)
	if err != nil || fl != math.Trunc(fl) || fl > math.MaxInt32 || fl < math.MinInt32 {
		return nil
	}
	f.val, f.ok = int(fl), true
	return nil
}

func isNull(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) == 0 || string(b) == "null"
}
