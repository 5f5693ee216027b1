package model

type DecodeResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ChunkInfo struct {
	Type       string `json:"type"`
	Length     uint32 `json:"length"`
	CRC        uint32 `json:"crc"`
	Critical   bool   `json:"critical"`
	Public     bool   `json:"public"`
	SafeToCopy bool   `json:"safe_to_copy"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
