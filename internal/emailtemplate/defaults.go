package emailtemplate

// builtin templates are used when a company has not activated its own.
var builtin = map[string]EmailTemplate{
	TypeOfferLetter: {
		Name:    "Default offer letter",
		Type:    TypeOfferLetter,
		Subject: "Your offer from {{company_name}}",
		BodyHTML: `<p>Dear {{candidate_name}},</p>
<p>We are delighted to offer you the role of <strong>{{designation}}</strong> at {{company_name}}.</p>
<p>Your annual cost to company is {{annual_ctc}} and your joining date is {{joining_date}}.
The offer letter {{offer_number}} is attached to this email.</p>
<p>Regards,<br>{{company_name}}</p>`,
	},
	TypeInterviewInvite: {
		Name:    "Default interview invite",
		Type:    TypeInterviewInvite,
		Subject: "Interview round {{round}} with {{company_name}}",
		BodyHTML: `<p>Dear {{candidate_name}},</p>
<p>Your round {{round}} interview is scheduled for {{scheduled_at}} ({{duration_minutes}} minutes, {{mode}}).</p>
<p>{{venue}}</p>
<p>Regards,<br>{{company_name}}</p>`,
	},
	TypeRejection: {
		Name:    "Default rejection",
		Type:    TypeRejection,
		Subject: "Your application at {{company_name}}",
		BodyHTML: `<p>Dear {{candidate_name}},</p>
<p>Thank you for your interest in the {{position}} role. After careful consideration we will not be moving forward with your application.</p>
<p>Regards,<br>{{company_name}}</p>`,
	},
}

// DefaultTemplate returns the built-in template for t, if there is one.
func DefaultTemplate(t string) (EmailTemplate, bool) {
	tpl, ok := builtin[t]
	if ok {
		tpl.IsActive = true
	}
	return tpl, ok
}
