package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// EnquiryStatus represents where an enquiry sits in the sales funnel
type EnquiryStatus int

const (
	EnquiryStatusNew       EnquiryStatus = 0
	EnquiryStatusContacted EnquiryStatus = 1
	EnquiryStatusQuoted    EnquiryStatus = 2
	EnquiryStatusWon       EnquiryStatus = 3
	EnquiryStatusLost      EnquiryStatus = 4
)

func (s EnquiryStatus) String() string {
	names := [...]string{"New", "Contacted", "Quoted", "Won", "Lost"}
	if int(s) < 0 || int(s) >= len(names) {
		return "New"
	}
	return names[s]
}

func (s EnquiryStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *EnquiryStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = EnquiryStatus(i)
		return nil
	}
	switch str {
	case "New":
		*s = EnquiryStatusNew
	case "Contacted":
		*s = EnquiryStatusContacted
	case "Quoted":
		*s = EnquiryStatusQuoted
	case "Won":
		*s = EnquiryStatusWon
	case "Lost":
		*s = EnquiryStatusLost
	}
	return nil
}

func (s EnquiryStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *EnquiryStatus) Scan(value interface{}) error {
	if value == nil {
		*s = EnquiryStatusNew
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = EnquiryStatus(v)
	case int:
		*s = EnquiryStatus(v)
	}
	return nil
}
