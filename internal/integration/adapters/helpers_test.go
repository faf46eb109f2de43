package adapters

import (
	"time"

	"github.com/bizportal/backend/internal/domain/entity"
)

func timeOf(value string) time.Time {
	t, err := time.Parse(entity.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}
