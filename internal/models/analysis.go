package models

type Analysis struct {
	Findings    []Finding `json:"findings"`
	HasWarnings bool      `json:"has_warnings"`
	Counts      Counts    `json:"counts"`
}

type Finding struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Counts struct {
	Producers   int `json:"producers"`
	Herbivores  int `json:"herbivores"`
	Carnivores  int `json:"carnivores"`
	Decomposers int `json:"decomposers"`
}
