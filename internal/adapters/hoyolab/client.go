package hoyolab

import (
	"context"
	"encoding/json"
	"net/url"

	"go.uber.org/zap"

	"github.com/jose-valero/hoyolab-gist-stats/internal/domain"
)

const gameRecordCardPath = "/game_record/card/wapi/getGameRecordCard"

// GetGameRecordCard trae data.list de la game record card del uid configurado.
// Errores posibles: *APIError (status != 200), ErrDecode (body no JSON),
// *SchemaError (falta data o data.list). Records individuales rotos no son error.
func (c *Client) GetGameRecordCard(ctx context.Context) ([]domain.GameRecord, error) {
	q := url.Values{}
	q.Set("uid", c.account.UID)

	body, err := c.getRaw(ctx, gameRecordCardPath, q)
	if err != nil {
		return nil, err
	}
	c.logResponse(body)

	return c.decodeCard(body)
}

func (c *Client) decodeCard(body []byte) ([]domain.GameRecord, error) {
	if !json.Valid(body) {
		return nil, ErrDecode
	}

	var env envelopeDTO
	if err := json.Unmarshal(body, &env); err != nil {
		// JSON válido pero no es un objeto
		return nil, &SchemaError{Missing: "data"}
	}
	schemaErr := func(missing string) error {
		return &SchemaError{Missing: missing, Retcode: env.Retcode.val, Message: env.Message.val}
	}

	if isNull(env.Data) {
		return nil, schemaErr("data")
	}
	var data cardDataDTO
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, schemaErr("data")
	}
	if len(data.List) == 0 {
		return nil, schemaErr("data.list")
	}
	if isNull(data.List) {
		return nil, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data.List, &raw); err != nil {
		return nil, schemaErr("data.list")
	}

	out := make([]domain.GameRecord, 0, len(raw))
	for i, r := range raw {
		var dto recordDTO
		if err := json.Unmarshal(r, &dto); err != nil {
			c.log.Warn("malformed game record, keeping placeholder", zap.Int("index", i), zap.Error(err))
		}
		out = append(out, toDomain(dto))
	}
	return out, nil
}

func toDomain(dto recordDTO) domain.GameRecord {
	rec := domain.GameRecord{
		GameID: dto.GameID.val,
		Name:   dto.GameName.val,
	}
	if dto.Level.ok {
		lvl := dto.Level.val
		rec.Level = &lvl
	}
	for _, st := range dto.Data {
		v := st.Value.val
		if !st.Value.ok {
			v = domain.NotAvailable
		}
		rec.Stats = append(rec.Stats, domain.Stat{Name: st.Name.val, Value: v})
	}
	return rec
}
