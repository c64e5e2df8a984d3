package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jose-valero/hoyolab-gist-stats/internal/domain"
)

func lvl(n int) *int { return &n }

func genshin() domain.GameRecord {
	return domain.GameRecord{
		GameID: domain.GameGenshinImpact,
		Name:   "Genshin Impact",
		Level:  lvl(55),
		Stats: []domain.Stat{
			{Name: "Active Days", Value: "120"},
			{Name: "Characters", Value: "40"},
		},
	}
}

func TestFormatRecordGenshin(t *testing.T) {
	got := FormatRecord(genshin())

	require.Equal(t, strings.Join([]string{
		"🎮 Genshin Impact",
		"⚔️ Lv.55",
		"🕹️ Active Days: 120",
		"🤝 Characters: 40",
		"🏆 Achievements: N/A",
		"🌟 Spiral Abyss: N/A",
	}, "\n"), got)
}

func TestFormatRecordGenshinAliases(t *testing.T) {
	rec := domain.GameRecord{
		GameID: domain.GameGenshinImpact,
		Name:   "原神",
		Level:  lvl(60),
		Stats: []domain.Stat{
			{Name: "活跃天数", Value: "900"},
			{Name: "Characters Obtained", Value: "88"},
			{Name: "Characters", Value: "87"},
			{Name: "成就达成数", Value: "1012"},
			{Name: "Spiral Abyss Progress", Value: "12-3"},
		},
	}

	lines := strings.Split(FormatRecord(rec), "\n")
	require.Equal(t, []string{
		"🎮 原神",
		"⚔️ Lv.60",
		"🕹️ Active Days: 900",
		// el primer alias listado gana aunque venga después en la card
		"🤝 Characters: 87",
		"🏆 Achievements: 1012",
		"🌟 Spiral Abyss: 12-3",
	}, lines)
}

func TestFormatRecordGeneric(t *testing.T) {
	rec := domain.GameRecord{
		GameID: 6,
		Name:   "Honkai: Star Rail",
		Level:  lvl(70),
		Stats: []domain.Stat{
			{Name: "Days Active", Value: "300"},
			{Name: "Characters Unlocked", Value: "50"},
			{Name: "Days Active", Value: "301"},
			{Name: "Chests Opened", Value: "2000"},
		},
	}

	lines := strings.Split(FormatRecord(rec), "\n")
	require.Equal(t, []string{
		"🎮 Honkai: Star Rail",
		"⚔️ Lv.70",
		"Days Active: 301",
		"Characters Unlocked: 50",
		"Chests Opened: 2000",
	}, lines)
	// una línea por nombre distinto
	require.Len(t, lines[2:], 3)
}

func TestFormatRecordGenericNoStats(t *testing.T) {
	got := FormatRecord(domain.GameRecord{GameID: 8, Name: "Zenless Zone Zero", Level: lvl(40)})
	require.Equal(t, "🎮 Zenless Zone Zero\n⚔️ Lv.40", got)
}

func TestFormatRecordMissingFields(t *testing.T) {
	got := FormatRecord(domain.GameRecord{})
	require.Equal(t, "🎮 N/A\n⚔️ Lv.N/A", got)

	got = FormatRecord(domain.GameRecord{GameID: domain.GameGenshinImpact})
	require.Contains(t, got, "⚔️ Lv.N/A")
	require.Contains(t, got, "🕹️ Active Days: N/A")
}

func TestFormatRecordPure(t *testing.T) {
	rec := genshin()
	first := FormatRecord(rec)
	_ = FormatRecord(domain.GameRecord{GameID: 99, Name: "other", Level: lvl(1)})
	require.Equal(t, first, FormatRecord(rec))
	require.Equal(t, genshin(), rec)
}

func TestBuildDigest(t *testing.T) {
	other := domain.GameRecord{GameID: 1, Name: "Honkai Impact 3rd", Level: lvl(80), Stats: []domain.Stat{{Name: "Battlesuits", Value: "30"}}}

	got := BuildDigest([]domain.GameRecord{genshin(), other})
	require.Equal(t, FormatRecord(genshin())+"\n\n"+FormatRecord(other)+"\n", got)
	require.Contains(t, got, "⚔️ Lv.55")
	require.Contains(t, got, "🕹️ Active Days: 120")
	require.Contains(t, got, "🤝 Characters: 40")
	require.Contains(t, got, "🏆 Achievements: N/A")
}

func TestBuildDigestEmpty(t *testing.T) {
	require.Equal(t, "", BuildDigest(nil))
}
