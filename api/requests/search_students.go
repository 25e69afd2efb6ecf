package requests

type SearchStudentsRequest struct {
	Search string `query:"search"`
	Course string `query:"course"`
	Risk   string `query:"risk"`
}
