package handlers

import (
	"reflect"
	"testing"

	"suratlocal/internal/models"
)

func TestChangedFields(t *testing.T) {
	listing := &models.Listing{
		Name:        "Chai Corner",
		Address:     "Ring Road, Surat",
		Phone:       "0261-1234567",
		Email:       "chai@example.com",
		Website:     "https://chaicorner.example.com",
		Hours:       "9am-9pm",
		Description: "Tea stall",
	}

	tests := []struct {
		name string
		form map[string]string
		want map[string]string
	}{
		{
			name: "no form values yields no changes",
			form: map[string]string{},
			want: map[string]string{},
		},
		{
			name: "identical values are dropped",
			form: map[string]string{
				"name":  "Chai Corner",
				"phone": "0261-1234567",
			},
			want: map[string]string{},
		},
		{
			name: "differing values are kept",
			form: map[string]string{
				"name":  "Chai Corner Deluxe",
				"phone": "0261-7654321",
			},
			want: map[string]string{
				"name":  "Chai Corner Deluxe",
				"phone": "0261-7654321",
			},
		},
		{
			name: "mixed identical and differing",
			form: map[string]string{
				"name":    "Chai Corner",
				"address": "New Ring Road, Surat",
				"hours":   "8am-10pm",
			},
			want: map[string]string{
				"address": "New Ring Road, Surat",
				"hours":   "8am-10pm",
			},
		},
		{
			name: "unknown fields are ignored",
			form: map[string]string{
				"slug":        "hacked-slug",
				"is_verified": "on",
				"name":        "Renamed",
			},
			want: map[string]string{
				"name": "Renamed",
			},
		},
		{
			name: "empty values are dropped",
			form: map[string]string{
				"name":        "",
				"description": "",
				"website":     "https://new.example.com",
			},
			want: map[string]string{
				"website": "https://new.example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := changedFields(listing, func(field string) string {
				return tt.form[field]
			})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("changedFields() = %v, want %v", got, tt.want)
			}
		})
	}
}
