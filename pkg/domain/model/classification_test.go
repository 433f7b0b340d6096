package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ocelot/pkg/domain/model"
)

func TestClassificationResponse_Answer(t *testing.T) {
	resp := model.ClassificationResponse{"respuesta": "Es un comercial", "confianza": 0.9}

	answer, ok := resp.Answer()
	gt.B(t, ok).True()
	gt.Equal(t, answer, "Es un comercial")
}

func TestClassificationResponse_AnswerAbsent(t *testing.T) {
	cases := map[string]model.ClassificationResponse{
		"empty response": {},
		"empty string":   {"respuesta": ""},
		"non-string":     {"respuesta": 42},
	}

	for name, resp := range cases {
		t.Run(name, func(t *testing.T) {
			_, ok := resp.Answer()
			gt.B(t, ok).False()
		})
	}
}
