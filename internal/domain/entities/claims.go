package entities

// Claims представляет полезную нагрузку токена сессии.
// Запись неизменяема после выпуска и не имеет серверного состояния:
// ее действительность определяется только криптографической подписью.
type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
