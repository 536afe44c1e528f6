// Package openai implements the [ai.Generator] gateway for OpenAI-compatible
// chat completion APIs. One [Client.Generate] call maps to one non-streaming
// POST to /chat/completions; the complete assistant text is returned before
// the caller proceeds.
//
// Any service speaking the OpenAI chat-completions dialect works by setting
// [Config.BaseURL], including DeepSeek, Ollama, and OpenRouter.
package openai
