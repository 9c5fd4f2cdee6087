package port

import "context"

// TextGenerator 外部生成服务边界：纯文本进，纯文本出。
// 失败以 error 返回，由调用方按展示单元处理。
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TextGeneratorFunc 允许普通函数实现 TextGenerator
type TextGeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f TextGeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
