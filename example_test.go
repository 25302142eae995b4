package gtgraphics_test

import (
	"os"

	gtgraphics "github.com/gtgfx/gtgraphics"
	"github.com/gtgfx/gtgraphics/pkg/document"
)

func Example() {
	proj := gtgraphics.New(320, 240)
	layer := proj.CreateLayer("main")
	layer.AddRectangle("Rect 1", document.Loc(10, 10), document.Dim(100, 50))

	if err := proj.WriteDocument(os.Stdout); err != nil {
		panic(err)
	}
	// Output:
	// <?xml version='1.0' encoding='utf-16'?>
	// <Composition Width="320" Height="240">
	//   <Layer Name="main" Location="0,0,0" Dimensions="320,240,0" Locked="False">
	//     <Layer.Composition>
	//       <Composition Width="320" Height="240">
	//         <Rectangle Name="Rect 1" Location="10,10,0" Dimensions="100,50,0" />
	//       </Composition>
	//     </Layer.Composition>
	//   </Layer>
	// </Composition>
}
