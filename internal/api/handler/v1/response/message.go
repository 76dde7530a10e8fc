package response

type Message struct {
	Msg string `json:"message"`
}

func Deleted() Message {
	return Message{Msg: "deleted"}
}
