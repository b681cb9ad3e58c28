// Пакет report — чистые функции отчётов над снимком реестра.
// Ничего не изменяют и не держат состояния между вызовами.
package report
