package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// Foundation holds the company profile collected before the risk questions
type Foundation struct {
	Industry string  `json:"industry"`
	Revenue  float64 `json:"revenue"`
}

// Validate checks if the Foundation is usable for an audit
func (f *Foundation) Validate() error {
	if f.Industry == "" {
		return goerr.New("industry is required")
	}
	if f.Revenue < 0 {
		return goerr.New("revenue cannot be negative", goerr.V("revenue", f.Revenue))
	}
	return nil
}
