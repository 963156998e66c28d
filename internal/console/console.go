// Package console печатает сообщения для пользователя (не логи).
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer выводит цветные сообщения в заданный writer
type Printer struct {
	out     io.Writer
	info    *color.Color
	success *color.Color
	warn    *color.Color
	fail    *color.Color
}

// New создает Printer
func New(out io.Writer) *Printer {
	return &Printer{
		out:     out,
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed, color.Bold),
	}
}

// Writer возвращает writer, в который пишет Printer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Info печатает информационное сообщение
func (p *Printer) Info(format string, args ...any) {
	p.info.Fprintf(p.out, format+"\n", args...)
}

// Success печатает сообщение об успехе
func (p *Printer) Success(format string, args ...any) {
	p.success.Fprintf(p.out, format+"\n", args...)
}

// Warn печатает предупреждение
func (p *Printer) Warn(format string, args ...any) {
	p.warn.Fprintf(p.out, format+"\n", args...)
}

// Fail печатает сообщение об ошибке
func (p *Printer) Fail(format string, args ...any) {
	p.fail.Fprintf(p.out, format+"\n", args...)
}

// Lines печатает строки без оформления
func (p *Printer) Lines(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(p.out, line)
	}
}
