/*
Package cssom provides an object model for generated style sheets.

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Style sheets
produced by the registrar are plain text; clients which want to inspect
them (tests, tooling, server-side rendering) parse them into a StyleSheet.
Implementations of the interfaces live in sub-packages, see package
douceuradapter.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom
