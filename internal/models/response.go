package models

import (
	"net/http"
	"time"
)

// ResponseModel is the envelope wrapped around every JSON API response.
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// ResponseCurrentTime returns the current time in epoch milliseconds,
// the unit used by the currentTime envelope field.
func ResponseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// NewResponse builds a version-2 response envelope around data.
func NewResponse(code int, data interface{}, text string) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        text,
		Version:     2,
	}
}

// NewOKResponse builds a 200 OK envelope around data.
func NewOKResponse(data interface{}) ResponseModel {
	return NewResponse(http.StatusOK, data, "OK")
}

// NewEntryResponse builds a 200 OK envelope whose data holds a single
// entry object.
func NewEntryResponse(entry interface{}) ResponseModel {
	return NewOKResponse(map[string]interface{}{"entry": entry})
}

// NewListResponse builds a 200 OK envelope whose data holds a list.
func NewListResponse(list interface{}) ResponseModel {
	return NewOKResponse(map[string]interface{}{"list": list})
}
