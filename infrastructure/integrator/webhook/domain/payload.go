package webhookdomain

// FeishuCardPayload é o envelope de cartão interativo do bot do Feishu
type FeishuCardPayload struct {
	MsgType string     `json:"msg_type"`
	Card    FeishuCard `json:"card"`
}

type FeishuCard struct {
	Config   FeishuCardConfig    `json:"config"`
	Header   FeishuCardHeader    `json:"header"`
	Elements []FeishuCardElement `json:"elements"`
}

type FeishuCardConfig struct {
	WideScreenMode bool `json:"wide_screen_mode"`
}

type FeishuCardHeader struct {
	Title    FeishuText `json:"title"`
	Template string     `json:"template"`
}

type FeishuText struct {
	Tag     string `json:"tag"`
	Content string `json:"content"`
}

type FeishuCardElement struct {
	Tag     string `json:"tag"`
	Content string `json:"content"`
}

// NewFeishuCard monta um cartão azul com título em texto simples e o corpo em markdown
func NewFeishuCard(title, markdown string) FeishuCardPayload {
	return FeishuCardPayload{
		MsgType: "interactive",
		Card: FeishuCard{
			Config: FeishuCardConfig{WideScreenMode: true},
			Header: FeishuCardHeader{
				Title:    FeishuText{Tag: "plain_text", Content: title},
				Template: "blue",
			},
			Elements: []FeishuCardElement{{Tag: "markdown", Content: markdown}},
		},
	}
}

// WeComMarkdownPayload é a mensagem markdown do bot do WeCom
type WeComMarkdownPayload struct {
	MsgType  string        `json:"msgtype"`
	Markdown WeComMarkdown `json:"markdown"`
}

type WeComMarkdown struct {
	Content string `json:"content"`
}

func NewWeComMarkdown(content string) WeComMarkdownPayload {
	return WeComMarkdownPayload{
		MsgType:  "markdown",
		Markdown: WeComMarkdown{Content: content},
	}
}

// Response guarda o status e o corpo devolvidos pelo webhook
type Response struct {
	StatusCode int
	Body       string
}
