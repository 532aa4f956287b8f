package entity

type ToolName string

const (
	ToolSaveCompanyRecord ToolName = "save_company_record"
)

func (t ToolName) String() string {
	return string(t)
}
