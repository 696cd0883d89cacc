package hearing

import "legaldesk/internal/domain/hearing"

type addInput struct {
	Body AddRequest
}

type AddRequest struct {
	CaseName string `json:"case_name" minLength:"1" example:"Sharma v. State"`
	Category string `json:"category" required:"false" example:"Civil" doc:"Free text, defaults to General"`
	Date     string `json:"date" example:"2025-04-01" doc:"YYYY-MM-DD"`
}

type addOutput struct {
	Body hearing.Hearing
}

type upcomingOutput struct {
	Body UpcomingResponse
}

type UpcomingResponse struct {
	Hearings []hearing.Hearing `json:"hearings"`
}
