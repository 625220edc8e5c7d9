package validation

import "regexp"

var namePattern = regexp.MustCompile(`^[a-zA-Z\-'\s]+$`)

// RegisterSchema mirrors the fields collected at account registration.
var RegisterSchema = Schema{
	{Name: "first_name", Rules: []Rule{
		Required("First Name"),
		MinLen("First Name", 3),
		MaxLen("First Name", 50),
		Pattern("First Name", namePattern, "must contain only letters"),
	}},
	{Name: "last_name", Rules: []Rule{
		MaxLen("Last Name", 50),
	}},
	{Name: "email", Rules: []Rule{
		Required("Email Address"),
		Email("Email Address"),
		MaxLen("Email Address", 255),
	}},
	{Name: "password", Rules: []Rule{
		Required("Password"),
		MinLen("Password", 8),
		MaxLen("Password", 255),
	}},
	{Name: "mobile_no", Rules: []Rule{
		Required("Mobile Number"),
		MaxLen("Mobile Number", 15),
	}},
	{Name: "address", Rules: []Rule{
		MaxLen("Address", 255),
	}},
	{Name: "city", Rules: []Rule{
		MaxLen("City", 50),
	}},
	{Name: "postal_code", Rules: []Rule{
		Required("Postal Code"),
		MaxLen("Postal Code", 10),
	}},
	{Name: "state", Rules: []Rule{
		MaxLen("State", 50),
	}},
	{Name: "country", Rules: []Rule{
		MaxLen("Country", 50),
	}},
}

// LoginSchema covers the login payload.
var LoginSchema = Schema{
	{Name: "email", Rules: []Rule{
		Required("Email Address"),
		Email("Email Address"),
	}},
	{Name: "password", Rules: []Rule{
		Required("Password"),
		MinLen("Password", 8),
		MaxLen("Password", 255),
	}},
}

// ConfirmOTPSchema covers the OTP confirmation payload.
var ConfirmOTPSchema = Schema{
	{Name: "email", Rules: []Rule{
		Required("Email Address"),
		Email("Email Address"),
	}},
	{Name: "otp", Rules: []Rule{
		Required("OTP"),
		MinLen("OTP", 4),
		MaxLen("OTP", 6),
	}},
}

// ApproveUserSchema covers the admin approval payload.
var ApproveUserSchema = Schema{
	{Name: "status", Rules: []Rule{
		Required("Status"),
		OneOf("Status", "approved", "rejected"),
	}},
}
