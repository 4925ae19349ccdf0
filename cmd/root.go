/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package main

/*****************************************************************************************************************/

import (
	"github.com/observerly/sensorcore/internal/simulate"
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var rootCommand = &cobra.Command{
	Use:   "sensorcore",
	Short: "sensorcore is a command-line tool for running synthetic CCD/CMOS sensor exposures.",
	Long:  "sensorcore is a command-line tool for running synthetic CCD/CMOS sensor exposures.",
}

/*****************************************************************************************************************/

func init() {
	rootCommand.AddCommand(simulate.Command)
}

/*****************************************************************************************************************/

func Execute() {
	if err := rootCommand.Execute(); err != nil {
		panic(err)
	}
}

/*****************************************************************************************************************/
