package models

import (
	"encoding/json"
	"testing"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	tests := []struct {
		in        string
		wantValue float64
		wantValid bool
	}{
		{`950`, 950, true},
		{`1.5`, 1.5, true},
		{`"950"`, 950, true},
		{`" 1.5 "`, 1.5, true},
		{`"huge"`, 0, false},
		{`""`, 0, false},
		{`null`, 0, false},
		{`true`, 0, false},
	}

	for _, tt := range tests {
		var n FlexNumber
		if err := json.Unmarshal([]byte(tt.in), &n); err != nil {
			t.Errorf("Unmarshal(%s) returned error: %v", tt.in, err)
			continue
		}
		if n.Valid != tt.wantValid || n.Value != tt.wantValue {
			t.Errorf("Unmarshal(%s) = {%v %v}; want {%v %v}", tt.in, n.Value, n.Valid, tt.wantValue, tt.wantValid)
		}
		if !n.Present {
			t.Errorf("Unmarshal(%s) left Present unset", tt.in)
		}
	}
}

func TestListingRequestDecode(t *testing.T) {
	body := `{
		"bathrooms": "1.5",
		"bedrooms": 2,
		"fee": 0,
		"has_photo": 1,
		"square_feet": "not a number",
		"latitude": 32.7,
		"longitude": -96.8,
		"cityname": "Dallas"
	}`

	var req ListingRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if !req.Bathrooms.Valid || req.Bathrooms.Value != 1.5 {
		t.Errorf("Bathrooms = %+v; want valid 1.5", req.Bathrooms)
	}
	if !req.Bedrooms.Valid || req.Bedrooms.Value != 2 {
		t.Errorf("Bedrooms = %+v; want valid 2", req.Bedrooms)
	}
	if req.SquareFeet.Valid || !req.SquareFeet.Present {
		t.Errorf("SquareFeet = %+v; want present but invalid", req.SquareFeet)
	}
	if req.Fee == nil || *req.Fee != 0 {
		t.Errorf("Fee = %v; want pointer to 0", req.Fee)
	}
	if req.Latitude == nil || *req.Latitude != 32.7 {
		t.Errorf("Latitude = %v; want pointer to 32.7", req.Latitude)
	}
	if req.Cityname != "Dallas" {
		t.Errorf("Cityname = %q; want Dallas", req.Cityname)
	}
}

// Fields that never appear in the payload must be distinguishable from
// fields sent as zero or null.
func TestListingRequestDecodeAbsentFields(t *testing.T) {
	var req ListingRequest
	if err := json.Unmarshal([]byte(`{"cityname":"Dallas"}`), &req); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if req.Bathrooms.Present || req.Bedrooms.Present || req.SquareFeet.Present {
		t.Errorf("absent flex fields decoded as present: %+v %+v %+v",
			req.Bathrooms, req.Bedrooms, req.SquareFeet)
	}
	if req.Fee != nil || req.HasPhoto != nil || req.Latitude != nil || req.Longitude != nil {
		t.Error("absent scalar fields decoded as non-nil pointers")
	}
}
