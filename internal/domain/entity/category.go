package entity

// Category agrupa produtos da banca (Revistas, Doces, Tabaco...).
type Category struct {
	ID          int64
	Name        string
	Description string
	Active      bool
}
