package handlers

import (
	"net/http"
	"testing"
)

func TestStatusMessage_ContractStatuses(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, "No Categories Has Been Found"},
		{http.StatusNotFound, "This Question Not Found"},
		{http.StatusUnprocessableEntity, "Can't Process Your Data"},
		{http.StatusInternalServerError, "There is an Error in Server"},
	}
	for _, tc := range cases {
		if got := StatusMessage(tc.status); got != tc.want {
			t.Errorf("StatusMessage(%d) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestStatusMessage_UnknownStatusFallsBackToServerError(t *testing.T) {
	if got := StatusMessage(http.StatusTeapot); got != MsgServerError {
		t.Fatalf("StatusMessage(418) = %q", got)
	}
}
