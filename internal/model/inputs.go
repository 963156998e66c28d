package model

// Inputs значения, собранные у пользователя один раз за запуск
type Inputs struct {
	PlaylistRef string
	Destination string
	Quality     Quality
}
