// Package fuzztests houses Go fuzz harnesses for the lexer. Its goal is to
// smoke test robustness on arbitrary bytes: every input must end in exactly
// one End token, and Peek must agree with Next.
//
// Назначение: прогонять произвольные байты через source.Buffer и лексер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
