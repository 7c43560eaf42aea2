package handler

import "github.com/dotpro/tutorial-web/internal/domain"

// PrimeVerdictDTO is the JSON representation of a primality verdict.
type PrimeVerdictDTO struct {
	Input   int    `json:"input"`
	IsPrime bool   `json:"isPrime"`
	Message string `json:"message"`
}

func toPrimeVerdictDTO(v domain.PrimeVerdict) PrimeVerdictDTO {
	return PrimeVerdictDTO{
		Input:   v.Input,
		IsPrime: v.IsPrime,
		Message: v.Message,
	}
}
