package model

type ScaleInfo struct {
	Id      int    `json:"id"`
	Name    string `json:"name"`
	Degrees []int  `json:"degrees"`
}

type ChordInfo struct {
	Id         int     `json:"id"`
	Name       string  `json:"name"`
	Formula    []int   `json:"formula"`
	Inversions [][]int `json:"inversions"`
}

type QuantizeRequestBody struct {
	Volts float64 `json:"volts"`
	Root  int     `json:"root"`
	Scale int     `json:"scale"`
}

type QuantizeResponse struct {
	Volts     float64 `json:"volts"`
	Root      int     `json:"root"`
	Scale     int     `json:"scale"`
	ScaleName string  `json:"scale_name"`
	Note      int     `json:"note"`
	NoteName  string  `json:"note_name"`
	Degree    int     `json:"degree"`
}

type VoicingRequestBody struct {
	Chord     int    `json:"chord"`
	Root      int    `json:"root"`
	Inversion int    `json:"inversion"`
	Repeat    string `json:"repeat"`
}

type VoicingResponse struct {
	Chord     string    `json:"chord"`
	Root      int       `json:"root"`
	Inversion int       `json:"inversion"`
	Offsets   []int     `json:"offsets"`
	Volts     []float64 `json:"volts"`
}

type ResolveRequestBody struct {
	Mode   int `json:"mode"`
	Tonic  int `json:"tonic"`
	Degree int `json:"degree"`
}

type ResolveResponse struct {
	Root       int    `json:"root"`
	RootName   string `json:"root_name"`
	Quality    string `json:"quality"`
	DegreeName string `json:"degree_name"`
}

type ProgressionRequestBody struct {
	Mode      int    `json:"mode"`
	Tonic     int    `json:"tonic"`
	Degrees   []int  `json:"degrees"`
	Inversion int    `json:"inversion"`
	Repeat    string `json:"repeat"`
}

type ProgressionResponse struct {
	Chords []VoicingResponse `json:"chords"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
