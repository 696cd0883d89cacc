package user

import "net/http"

type registerInput struct {
	Body RegisterRequest
}

type RegisterRequest struct {
	Username     string `json:"username" doc:"Advocate login name" example:"adv.sharma"`
	Password     string `json:"password" doc:"Password"`
	EnrollmentID string `json:"enrollment_id" required:"false" doc:"Bar council enrollment number" example:"MAH/1234/2015"`
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	Username string `json:"username"`
	Status   string `json:"status"`
}

type loginInput struct {
	Body LoginRequest
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type stateOutput struct {
	Body StateResponse
}

// StateResponse describes the caller's session.
type StateResponse struct {
	State        string `json:"state" enum:"anonymous,authenticated"`
	Username     string `json:"username,omitempty"`
	EnrollmentID string `json:"enrollment_id,omitempty"`
}

type endOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      StateResponse
}
