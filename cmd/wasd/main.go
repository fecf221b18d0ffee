//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/timburks/wasd/pkg/commander"
	"github.com/timburks/wasd/pkg/config"
	"github.com/timburks/wasd/pkg/editor"
	"github.com/timburks/wasd/pkg/screen"
)

func main() {

	configPath := config.DefaultPath()
	var script string
	var debug bool

	for i := 1; i < len(os.Args); i++ {
		switch os.Args[i] {
		case "--config":
			i++
			if i < len(os.Args) {
				configPath = os.Args[i]
			} else {
				log.Output(1, "No file specified for --config option")
				return
			}
		case "--eval": // eval program
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				return
			}
		case "--debug":
			debug = true
		default:
			log.Output(1, "Unknown argument "+os.Args[i])
			return
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if debug {
		cfg.Debug = true
	}

	// The engine owns the text and applies key presses to it.
	e := editor.NewEngine(cfg.EngineOptions()...)

	// The commander converts user inputs and scripts into key presses.
	c := commander.NewCommander(e)
	c.SetDebug(cfg.Debug)

	if script != "" {
		// Run a script and print the resulting text.
		output, err := c.ParseEvalFile(script)
		if err != nil {
			log.Fatalf("%v", err)
		}
		log.Printf("%s", output)
		fmt.Println(e.State().Buffer.String())
		return
	}

	// Open a log file.
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	// Create a screen to manage display.
	s := screen.NewScreen()
	if s == nil {
		return
	}
	defer s.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(c)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
}
