package menu

import (
	"strings"
	"testing"
)

func validInput() *MenuItemInput {
	return &MenuItemInput{
		Name:            "Butter Chicken",
		Description:     "Creamy tomato gravy with tandoori chicken",
		Price:           320,
		Category:        "Main Course",
		PreparationTime: 25,
		IsAvailable:     true,
	}
}

func TestValidateInput_Valid(t *testing.T) {
	if err := ValidateInput(validInput()); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}

	in := validInput()
	in.ImageURL = "https://cdn.example.com/butter-chicken.jpg"
	if err := ValidateInput(in); err != nil {
		t.Fatalf("expected valid image URL to pass, got %v", err)
	}
}

func TestValidateInput_FieldErrors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*MenuItemInput)
		wantMsg string
	}{
		{
			name:    "empty name",
			mutate:  func(in *MenuItemInput) { in.Name = "  " },
			wantMsg: "name is required",
		},
		{
			name:    "name too long",
			mutate:  func(in *MenuItemInput) { in.Name = strings.Repeat("x", 101) },
			wantMsg: "name must be less than 100 characters",
		},
		{
			name:    "description too long",
			mutate:  func(in *MenuItemInput) { in.Description = strings.Repeat("x", 501) },
			wantMsg: "description must be less than 500 characters",
		},
		{
			name:    "zero price",
			mutate:  func(in *MenuItemInput) { in.Price = 0 },
			wantMsg: "price must be positive",
		},
		{
			name:    "negative price",
			mutate:  func(in *MenuItemInput) { in.Price = -5 },
			wantMsg: "price must be positive",
		},
		{
			name:    "price too high",
			mutate:  func(in *MenuItemInput) { in.Price = 100001 },
			wantMsg: "price is too high",
		},
		{
			name:    "empty category",
			mutate:  func(in *MenuItemInput) { in.Category = "" },
			wantMsg: "category is required",
		},
		{
			name:    "prep time too low",
			mutate:  func(in *MenuItemInput) { in.PreparationTime = 0 },
			wantMsg: "preparation time must be at least 1 minute",
		},
		{
			name:    "prep time too high",
			mutate:  func(in *MenuItemInput) { in.PreparationTime = 181 },
			wantMsg: "preparation time must be less than 180 minutes",
		},
		{
			name:    "bad image URL",
			mutate:  func(in *MenuItemInput) { in.ImageURL = "not-a-url" },
			wantMsg: "invalid image URL",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(in)

			err := ValidateInput(in)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Error() != tc.wantMsg {
				t.Errorf("expected %q, got %q", tc.wantMsg, err.Error())
			}
		})
	}
}
