package domain

// IDs de juego tal como los expone la game record card de HoYoLab.
const (
	GameGenshinImpact = 2
)

// NotAvailable se muestra en lugar de cualquier dato que falte.
const NotAvailable = "N/A"

// Stat es un par {name, value} de la card; los nombres vienen localizados.
type Stat struct {
	Name  string
	Value string
}

// GameRecord es una entrada de data.list.
type GameRecord struct {
	GameID int
	Name   string
	Level  *int // nil si la API no lo manda o viene roto
	Stats  []Stat
}
