// Command release tells the servo board to stop driving its servos, for when
// the main program died without doing so.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/adammck/stewart/servos"
)

var (
	portName = flag.String("port", "/dev/ttyACM0", "the serial port path")
	baud     = flag.Int("baud", servos.DefaultBaud, "the baud rate")
)

func main() {
	flag.Parse()

	port, err := servos.Open(*portName, *baud)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer port.Close()

	if err := servos.Release(port); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
