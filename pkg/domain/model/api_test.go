package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/taskflow/memberctl/pkg/domain/model"
)

func TestPayloadHasMarker(t *testing.T) {
	markers := []string{"exitosamente", "successfully"}

	gt.True(t, (&model.Payload{Message: "Miembro agregado exitosamente"}).HasMarker(markers))
	gt.True(t, (&model.Payload{Message: "Member added Successfully"}).HasMarker(markers))
	gt.False(t, (&model.Payload{Message: "Usuario no encontrado"}).HasMarker(markers))
	gt.False(t, (&model.Payload{}).HasMarker(markers))

	var nilPayload *model.Payload
	gt.False(t, nilPayload.HasMarker(markers))
}

func TestAPIResponseFailureText(t *testing.T) {
	t.Run("Server error text is preferred", func(t *testing.T) {
		resp := &model.APIResponse{StatusCode: 403, Payload: &model.Payload{Error: "not the owner"}}
		gt.Equal(t, "not the owner", resp.FailureText())
	})

	t.Run("Detail is used when error is absent", func(t *testing.T) {
		resp := &model.APIResponse{StatusCode: 401, Payload: &model.Payload{Detail: "token expired"}}
		gt.Equal(t, "token expired", resp.FailureText())
	})

	t.Run("Status is used without a body", func(t *testing.T) {
		resp := &model.APIResponse{StatusCode: 502}
		gt.Equal(t, "HTTP 502", resp.FailureText())
		gt.False(t, resp.OK())
	})
}

func TestPayloadSuccessFlag(t *testing.T) {
	yes, no := true, false
	gt.True(t, (&model.Payload{Success: &yes}).Succeeded())
	gt.False(t, (&model.Payload{Success: &yes}).Failed())
	gt.True(t, (&model.Payload{Success: &no}).Failed())
	gt.False(t, (&model.Payload{}).Succeeded())
	gt.False(t, (&model.Payload{}).Failed())
}
