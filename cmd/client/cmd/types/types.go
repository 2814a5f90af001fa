// Package types содержит ключи контекста, общие для всех команд клиента.
package types

type contextKey string

// ClientAppKey — ключ, под которым собранное приложение лежит в контексте
// команды. Кладётся в root, читается в подкомандах.
const ClientAppKey contextKey = "app"
