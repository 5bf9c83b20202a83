package schema

type Message struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Version struct {
	Version string `json:"version"`
	Date    string `json:"date"`
}
