package cli

import "fmt"

func Error(message string) {
	fmt.Print(Paint(RedColour, message))
}

func Errorln(message string) {
	fmt.Println(Paint(RedColour, message))
}

func Success(message string) {
	fmt.Print(Paint(GreenColour, message))
}

func Successln(message string) {
	fmt.Println(Paint(GreenColour, message))
}

func Warning(message string) {
	fmt.Print(Paint(YellowColour, message))
}

func Warningln(message string) {
	fmt.Println(Paint(YellowColour, message))
}

func Magenta(message string) {
	fmt.Print(Paint(MagentaColour, message))
}

func Magentaln(message string) {
	fmt.Println(Paint(MagentaColour, message))
}

func Blue(message string) {
	fmt.Print(Paint(BlueColour, message))
}

func Blueln(message string) {
	fmt.Println(Paint(BlueColour, message))
}

func Cyan(message string) {
	fmt.Print(Paint(CyanColour, message))
}

func Cyanln(message string) {
	fmt.Println(Paint(CyanColour, message))
}

func Gray(message string) {
	fmt.Print(Paint(GrayColour, message))
}

func Grayln(message string) {
	fmt.Println(Paint(GrayColour, message))
}
