// Package fuzztests houses Go fuzz harnesses for the Selene lexer. Its goal is
// to smoke test robustness and guard against panics on arbitrary inputs.
//
// Назначение: загружать байты в FileSet, прогонять их через лексер и
// проверять инварианты потока токенов (internal/testkit).
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
