package email

const (
	subjectHotLeadFmt = "Hot lead: %s is ready to talk"
)
