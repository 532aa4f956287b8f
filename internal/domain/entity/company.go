package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// CompanyRecord is one extracted company-founding fact. Field tags match the
// keys the extraction prompt asks the model to return.
type CompanyRecord struct {
	SeqNo        FlexInt `json:"S.No."`
	CompanyName  string  `json:"company_name"`
	FoundingDate string  `json:"founding_date"`
	Founders     string  `json:"founders"`
}

// FlexInt accepts both a JSON number and a quoted number. The prompt shows
// the sequence number as "<int>", so models return either form.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("sequence number %q is not an integer", data)
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}
