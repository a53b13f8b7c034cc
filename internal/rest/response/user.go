package response

type Token struct {
	Token string `json:"token"`
}
