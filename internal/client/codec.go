package client

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shenikar/tactical_dashboard/internal/models"
)

func decodeAlert(data json.RawMessage) (*models.Alert, error) {
	if len(data) == 0 {
		return nil, errors.New("empty alert payload")
	}
	var alert models.Alert
	if err := json.Unmarshal(data, &alert); err != nil {
		return nil, errors.Wrap(err, "decode alert")
	}
	return &alert, nil
}
