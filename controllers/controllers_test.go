package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/tommytoyou/bost-lawn-care/services"
)

func TestFieldLabel(t *testing.T) {
	for in, want := range map[string]string{
		"name":            "Name",
		"serviceInterest": "Service interest",
		"preferredDate":   "Preferred date",
	} {
		if got := fieldLabel(in); got != want {
			t.Errorf("fieldLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBindingErrors(t *testing.T) {
	if err := RegisterValidators(); err != nil {
		t.Fatal(err)
	}
	in := CreateInquiryInput{Name: "Sam", Email: "not-an-email", Phone: "555-0123"}
	err := binding.Validator.ValidateStruct(&in)
	fields, ok := bindingErrors(err)
	if !ok {
		t.Fatalf("bindingErrors(%v) not recognized", err)
	}
	if len(fields) != 2 {
		t.Fatalf("fields = %v", fields)
	}
	if fields["email"].Kind != services.InvalidFormat || fields["email"].Message != "Email is not a valid email address" {
		t.Fatalf("email = %+v", fields["email"])
	}
	if fields["message"].Kind != services.MissingField {
		t.Fatalf("message = %+v", fields["message"])
	}

	if _, ok := bindingErrors(errors.New("unexpected EOF")); ok {
		t.Fatal("plain error treated as a validation failure")
	}
}

func TestRespondErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		err  error
		want int
	}{
		{services.ValidationErrors{"name": {Kind: services.MissingField}}, http.StatusUnprocessableEntity},
		{services.ErrWizardNotFound, http.StatusNotFound},
		{fmt.Errorf("testimonial 9: %w", services.ErrNotFound), http.StatusNotFound},
		{services.ErrUnknownService, http.StatusBadRequest},
		{services.ErrWrongStep, http.StatusConflict},
		{services.ErrNotAtReview, http.StatusConflict},
		{services.ErrAlreadySubmitted, http.StatusConflict},
		{services.ErrNotSubmitted, http.StatusConflict},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondError(c, tt.err)
		if w.Code != tt.want {
			t.Errorf("respondError(%v) = %d, want %d", tt.err, w.Code, tt.want)
		}
	}
}
